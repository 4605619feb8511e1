package rules

// under appends suffix to each base selector.
func under(bases []string, suffix string) []string {
	out := make([]string, len(bases))
	for i, b := range bases {
		out[i] = b + suffix
	}
	return out
}

func join(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

const (
	operations = "$.paths[*]['get','put','post','patch','delete','options','head','trace']"
	responses  = operations + ".responses"

	errorStatusFilter = "[?match(@~, '[45]([0-9]{2}|XX)')]"

	// operationsWithRequestBody selects operations that declare a requestBody.
	operationsWithRequestBody = "$.paths[*][?@.requestBody && match(@~, 'get|put|post|patch|delete|options|head|trace')]"
)

var (
	responseContent = []string{
		responses + "[*].content",
		"$.components.responses[*].content",
	}
	requestContent = []string{
		operations + ".requestBody.content",
		"$.components.requestBodies[*].content",
	}

	// errorResponseContent selects the content of responses keyed by a 4xx or
	// 5xx code or range. Status code keys are quoted in OpenAPI, so they reach
	// the filter as strings.
	errorResponseContent = []string{
		responses + errorStatusFilter + ".content",
		"$.components.responses" + errorStatusFilter + ".content",
	}

	responseDocuments = under(responseContent, "[*].schema")
	requestDocuments  = under(requestContent, "[*].schema")
	documents         = join(responseDocuments, requestDocuments)

	// documentMembers select the properties of top-level document schemas.
	documentMembers      = under(documents, ".properties")
	errorDocumentMembers = under(errorResponseContent, "[*].schema.properties")

	responseResources = join(
		under(responseDocuments, ".properties.data.properties"),
		under(responseDocuments, ".properties.data.items.properties"),
		under(responseDocuments, ".properties.included.items.properties"),
	)
	requestResources = join(
		under(requestDocuments, ".properties.data.properties"),
		under(requestDocuments, ".properties.data.items.properties"),
	)
	// resources select the properties of resource object schemas.
	resources = join(responseResources, requestResources)

	attributes    = under(resources, ".attributes.properties")
	relationships = under(resources, ".relationships.properties")
	// relationshipObjects select the schemas of individual relationships.
	relationshipObjects = under(relationships, "[*]")
	resourceLinkage     = join(
		under(relationshipObjects, ".properties.data.properties"),
		under(relationshipObjects, ".properties.data.items.properties"),
	)

	errorObjects = under(documents, ".properties.errors.items.properties")

	queryParameters = []string{
		operations + ".parameters[?@.in == 'query']",
		"$.paths[*].parameters[?@.in == 'query']",
		"$.components.parameters[?@.in == 'query']",
	}
)
