// Package httputil provides helpers for request parsing shared by all
// controllers.
package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the
// interface.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(io.EOF, err) {
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// GetBodyFields returns the struct field names for all keys that are
// present in the request body, including keys that are explicitly set
// to null.
//
// This is used by PATCH handlers to only update the fields a client
// actually sent. The body is restored so that it can be bound again
// afterwards.
func GetBodyFields(c *gin.Context, input any) ([]any, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, ErrInvalidBody
	}

	// Restore the body so that BindData can consume it again
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, ErrInvalidBody
	}

	fields := []any{}

	inputType := reflect.TypeOf(input)
	for i := 0; i < inputType.NumField(); i++ {
		field := inputType.Field(i)

		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" {
			name = field.Name
		}

		if _, ok := raw[name]; ok {
			fields = append(fields, field.Name)
		}
	}

	return fields, nil
}

// GetURLFields returns all struct field names that are set in the query
// string of the URL.
//
// The first return value contains the fields that can be passed
// directly to a gorm Where condition. Fields tagged with
// filterField:"false" need custom handling in the controller and are
// only part of the second return value.
func GetURLFields(u *url.URL, filter any) ([]any, []string) {
	queryFields := []any{}
	setFields := []string{}

	filterType := reflect.TypeOf(filter)
	for i := 0; i < filterType.NumField(); i++ {
		field := filterType.Field(i)

		name := strings.Split(field.Tag.Get("form"), ",")[0]
		if name == "" {
			continue
		}

		if u.Query().Has(name) {
			setFields = append(setFields, field.Name)

			if field.Tag.Get("filterField") != "false" {
				queryFields = append(queryFields, field.Name)
			}
		}
	}

	return queryFields, setFields
}
