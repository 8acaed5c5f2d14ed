// Package bind decodes request input into typed structs and validates it with english messages
package bind

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// Validator pairs the shared validator with its english translator
type Validator struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vInst *Validator
)

// message overrides the stock english text for a tag; {0} is the field, {1} the param
type message struct {
	tag, text string
	param     bool
}

var messages = []message{
	{tag: "min", text: "{0} must be at least {1}", param: true},
	{tag: "max", text: "{0} must be at most {1}", param: true},
	{tag: "oneof", text: "{0} must be one of [{1}]", param: true},
}

// Get returns the shared validator, building it on first use
func Get() *Validator {
	vOnce.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(fieldName)
		_ = entrans.RegisterDefaultTranslations(v, trans)
		for _, m := range messages {
			registerMessage(v, trans, m)
		}

		vInst = &Validator{Validate: v, Translator: trans}
	})
	return vInst
}

// fieldName reports the wire name of a field: its query tag, then its json tag, then the Go name
func fieldName(f reflect.StructField) string {
	for _, key := range []string{"query", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func registerMessage(v *validator.Validate, trans ut.Translator, m message) {
	_ = v.RegisterTranslation(m.tag, trans,
		func(t ut.Translator) error { return t.Add(m.tag, m.text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			args := []string{fe.Field()}
			if m.param {
				args = append(args, fe.Param())
			}
			msg, _ := t.T(m.tag, args...)
			return msg
		},
	)
}

// ValidationFieldAndMessage returns the first failing field and its translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	}
	return "", err.Error()
}
