package constants

const (
	// MAX_QUERY_LENGTH caps the chat query forwarded to the model
	MAX_QUERY_LENGTH = 2000

	// MAX_POPULAR_COLLECTIONS caps the top parameter of the popular collections endpoint
	MAX_POPULAR_COLLECTIONS = 100
)
