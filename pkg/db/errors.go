package db

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsNotFound reports whether a single-document read matched nothing.
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// IsDuplicateKey reports whether a write collided with a unique index.
func IsDuplicateKey(err error) bool {
	return err != nil && mongo.IsDuplicateKeyError(err)
}
