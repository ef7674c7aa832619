package model

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"
)

// CSRF_FIELD is the form field gorilla/csrf reads the token from.
const CSRF_FIELD = "gorilla.csrf.Token"

type DataMap map[string]interface{}

// Field makes DataMap usable as a table row.
func (d DataMap) Field(key string) any {
	return d[key]
}

func (d DataMap) Fields() map[string]any {
	return d
}

// StripEmpty drops empty values and the CSRF token, e.g. from a submitted form.
func (d DataMap) StripEmpty() DataMap {
	strippedMap := DataMap{}
	for key, value := range d {
		if value == nil || key == CSRF_FIELD {
			continue
		}
		if s := fmt.Sprintf("%v", value); s != "" {
			strippedMap[key] = value
		}
	}
	return strippedMap
}

func (d DataMap) Clone() DataMap {
	if d == nil {
		return DataMap{}
	}
	return maps.Clone(d)
}

func (d DataMap) Has(key string) bool {
	_, ok := d[key]
	return ok
}

func (d DataMap) GetStringByKey(key string) string {
	if value, ok := d[key]; ok && value != nil {
		return strings.TrimSpace(fmt.Sprintf("%v", value))
	}
	return ""
}

// GetIntByKey accepts ints, JSON numbers and numeric strings.
func (d DataMap) GetIntByKey(key string) int {
	switch value := d[key].(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	case string:
		number, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0
		}
		return number
	}
	return 0
}

func (d DataMap) GetTimeByKey(key string) string {
	if value, ok := d[key]; ok {
		switch date := value.(type) {
		case time.Time:
			return date.Format("2006-01-02")
		case *time.Time:
			if date != nil {
				return date.Format("2006-01-02")
			}
			return ""
		}
		return "invalid time"
	}
	return "invalid time"
}
