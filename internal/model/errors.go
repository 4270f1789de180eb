package model

import "errors"

var (
	// ErrNotFound is returned when a course, paper, question pool or attempt
	// does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientPool is returned when a course has fewer questions than
	// a full-length test requires.
	ErrInsufficientPool = errors.New("not enough questions in pool")
	// ErrDuplicateQuestion is returned when a new question's normalized text
	// collides with an existing question of the same course.
	ErrDuplicateQuestion = errors.New("duplicate question text")
	// ErrPersistence is returned when a store write fails.
	ErrPersistence = errors.New("store write failed")
	// ErrValidation is returned for malformed input that survives request
	// binding.
	ErrValidation = errors.New("invalid input")
)
