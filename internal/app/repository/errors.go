package repository

import "errors"

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrDuplicatePhoneNumber = errors.New("phone number already exists")
	ErrPhoneReference       = errors.New("referenced phone does not exist")
)
