package validator

import (
	"autobazaar/errors"
	"autobazaar/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	MinScore = 1
	MaxScore = 5
)

// ValidateScore kiểm tra điểm đánh giá thuộc 1..5
func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return errors.BadRequest(errors.ErrCodeInvalidScore, "Score must be an integer between 1 and 5", nil)
	}
	return nil
}

// ValidateRole kiểm tra role thuộc tập admin, user, moderator
func ValidateRole(role string) error {
	if _, err := models.ParseRole(role); err != nil {
		return errors.BadRequest(errors.ErrCodeInvalidRole, "Role must be one of admin, user, moderator", err)
	}
	return nil
}

func roleRule(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).Valid()
}

func scoreRule(fl validator.FieldLevel) bool {
	return ValidateScore(int(fl.Field().Int())) == nil
}

// RegisterBindings đăng ký các rule "role" và "score" cho validator của gin
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("role", roleRule); err != nil {
		return err
	}
	return v.RegisterValidation("score", scoreRule)
}
