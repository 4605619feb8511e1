package rules

import (
	"github.com/openapi-jsonapi/jsonapi-lint/functions"
	"github.com/openapi-jsonapi/jsonapi-lint/spectral"
)

func propertyType(name, typ string) spectral.Then {
	return spectral.Then{
		Function: functions.NamePropertyType,
		FunctionOptions: map[string]any{
			"propertyName": name,
			"propertyType": typ,
		},
	}
}

func enumeration(field string, values ...string) spectral.Then {
	return spectral.Then{
		Field:           field,
		Function:        "enumeration",
		FunctionOptions: map[string]any{"values": values},
	}
}

func matches(field, pattern string) spectral.Then {
	return spectral.Then{
		Field:           field,
		Function:        "pattern",
		FunctionOptions: map[string]any{"match": pattern},
	}
}

func notMatches(field, pattern string) spectral.Then {
	return spectral.Then{
		Field:           field,
		Function:        "pattern",
		FunctionOptions: map[string]any{"notMatch": pattern},
	}
}

func requiresAny(members ...string) spectral.Then {
	anyOf := make([]any, len(members))
	for i, m := range members {
		anyOf[i] = map[string]any{"required": []string{m}}
	}
	return spectral.Then{
		Function:        "schema",
		FunctionOptions: map[string]any{"schema": map[string]any{"anyOf": anyOf}},
	}
}

func check(field, function string) spectral.Then {
	return spectral.Then{Field: field, Function: function}
}
