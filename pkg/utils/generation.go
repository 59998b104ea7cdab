package utils

import (
	"github.com/google/uuid"
)

var (
	GenerateUUIDv4Func = GenerateUUIDv4
)

func GenerateUUIDv4() string {
	return uuid.NewString()
}
