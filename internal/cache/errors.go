package cache

import "errors"

var (
	// ErrStorageRead means the underlying store could not be read
	ErrStorageRead = errors.New("booking cache: storage read failed")

	// ErrDeserialization means stored bytes could not be decoded into a booking
	ErrDeserialization = errors.New("booking cache: stored booking is not decodable")

	// ErrStorageWrite means the underlying store rejected the write
	ErrStorageWrite = errors.New("booking cache: storage write failed")

	// ErrClear means the slot could not be removed
	ErrClear = errors.New("booking cache: clear failed")
)
