// file: internals/features/enrollment/enrollments/controller/enrollment_controller_test.go
package controller

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusForSubmitError(t *testing.T) {
	// losing the unique-index race to a concurrent submit is the same
	// conflict the pre-check reports
	status, msg := statusForSubmitError(fmt.Errorf("create enrollment: %w", gorm.ErrDuplicatedKey))
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, duplicateEnrollmentMsg, msg)

	status, _ = statusForSubmitError(gorm.ErrDuplicatedKey)
	assert.Equal(t, fiber.StatusConflict, status)

	status, msg = statusForSubmitError(errors.New("connection reset by peer"))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "connection reset by peer", msg)
}
