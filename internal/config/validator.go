package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/at-ishikawa/sven/internal/cache"
	"github.com/at-ishikawa/sven/internal/lexicon"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("direction", isDirection); err != nil {
		return nil, nil, fmt.Errorf("failed to register direction validation: %w", err)
	}
	if err := validate.RegisterTranslation("direction", trans, func(ut ut.Translator) error {
		return ut.Add("direction", "{0} must be one of english, en, swedish or sv", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("direction", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register direction translation: %w", err)
	}
	validate.RegisterStructValidation(databaseValidation, Config{})

	return validate, trans, nil
}

func isDirection(fl validator.FieldLevel) bool {
	_, err := lexicon.ParseDirection(fl.Field().String())
	return err == nil
}

// databaseValidation requires the connection settings only when the cache lives in MySQL.
func databaseValidation(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	if cfg.Cache.Driver != string(cache.DriverMySQL) {
		return
	}
	if cfg.Database.Host == "" {
		sl.ReportError(cfg.Database.Host, "database.host", "Host", "required", "")
	}
	if cfg.Database.Port <= 0 {
		sl.ReportError(cfg.Database.Port, "database.port", "Port", "required", "")
	}
	if cfg.Database.Database == "" {
		sl.ReportError(cfg.Database.Database, "database.database", "Database", "required", "")
	}
	if cfg.Database.Username == "" {
		sl.ReportError(cfg.Database.Username, "database.username", "Username", "required", "")
	}
}
