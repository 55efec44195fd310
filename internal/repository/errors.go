package repository

import (
	"errors"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
)

var (
	ErrNotFound       = fmt.Errorf("entity %w", entity.ErrNotFound)
	ErrAlreadyExists  = errors.New("entity already exists")
	ErrUpdateFailed   = errors.New("failed to update entity")
	ErrOptimisticLock = errors.New("optimistic lock conflict: data was modified by another process")
	ErrQueryFailed    = errors.New("database query failed")
)
