package acts

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"acts-service-go/internal/pkg/textutil"
)

var (
	ErrNoKitItems         = errors.New("at least one kit item is required")
	ErrMissingReceiver    = errors.New("receiver is required")
	ErrMissingSurrenderer = errors.New("surrenderer is required for sdacha act")
	ErrMissingIssuer      = errors.New("issuer is required for vydacha act")
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// Validator проверяет ActInput перед сборкой документа
type Validator struct {
	validate *validator.Validate
}

// NewValidator создает валидатор с правилами для актов
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// в сообщениях используем имена полей из JSON
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("year", func(fl validator.FieldLevel) bool {
		return yearPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("condition", func(fl validator.FieldLevel) bool {
		return Condition(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{validate: v}
}

// Validate проверяет акт и собирает все ошибки в одну
func (v *Validator) Validate(in *ActInput) error {
	if in == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	var errs []string

	if len(in.KitItems) == 0 {
		errs = append(errs, ErrNoKitItems.Error())
	}

	if err := v.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		for _, fe := range verrs {
			if fe.Field() == "kitItems" && (fe.Tag() == "required" || fe.Tag() == "min") {
				continue
			}
			errs = append(errs, describeFieldError(fe))
		}
	}

	errs = append(errs, v.validateParties(in)...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: validation failed: %s", ErrInvalidInput, strings.Join(errs, "; "))
	}
	return nil
}

func (v *Validator) validateParties(in *ActInput) []string {
	var errs []string
	if !hasParty(in.Receiver, in.ReceiverLabel, in.ReceiverLastNameInitials) {
		errs = append(errs, ErrMissingReceiver.Error())
	}
	switch in.ActType {
	case ActSdacha:
		if !hasParty(in.Surrenderer, in.SurrendererLabel, in.SurrendererGenitiveLabel) {
			errs = append(errs, ErrMissingSurrenderer.Error())
		}
	case ActVydacha:
		if !hasParty(in.Issuer, in.IssuerLabel, in.IssuerGenitiveLabel) {
			errs = append(errs, ErrMissingIssuer.Error())
		}
	}
	return errs
}

func hasParty(p *textutil.Person, labels ...string) bool {
	if p != nil && !p.IsZero() {
		return true
	}
	return firstNonBlank(labels...) != ""
}

// describeFieldError "kitItems[1].condition: invalid value \"broken\""
func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "ActInput.")
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s long", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s long", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "year":
		return fmt.Sprintf("%s must be a four-digit year", field)
	default:
		return fmt.Sprintf("%s: invalid value %q", field, fmt.Sprint(fe.Value()))
	}
}
