package constvars

// Client-facing messages. These are what the console renders as error toasts.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientBackendUnreachable            = "The hospital backend cannot be reached, please try again"
	ErrClientRecordNotFound                = "The requested record could not be found"
	ErrClientDeleteNotConfirmed            = "Deletion must be confirmed before it is carried out"
	ErrClientServerLongRespond             = "The server took too long to respond, please try again"
)

// Developer-facing messages, logged but never returned to the client.
const (
	ErrDevFailedToCreateHTTPRequest = "failed to create HTTP request"
	ErrDevFailedToSendHTTPRequest   = "failed to send HTTP request"
	ErrDevFailedToReadResponseBody  = "failed to read response body"
	ErrDevFailedToDecodeResponse    = "failed to decode %s response"
	ErrDevBackendRejectedRequest    = "backend rejected %s request with status %d"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevRequiredFieldMissing      = "required field %s is missing"
	ErrDevFieldFormatInvalid        = "field %s does not match the expected format"
	ErrDevFieldOptionInvalid        = "field %s is not one of the allowed options"
	ErrDevCannotParseJSON           = "failed to parse JSON request body"
	ErrDevCannotParseMultipartForm  = "failed to parse multipart form"
	ErrDevDeleteNotConfirmed        = "delete requested without confirmation flag"
	ErrDevRecordNotFound            = "record %s not found in %s collection"
	ErrDevWorkflowActionNotAllowed  = "workflow action %s not allowed from status %q (billed=%t)"
	ErrDevUnknownWorkflowAction     = "unknown workflow action %s"

	ErrDevRedisFailedToSet      = "redis failed to set key"
	ErrDevRedisFailedToGet      = "redis failed to get key %s"
	ErrDevRedisFailedToDelete   = "redis failed to delete key"
	ErrDevCannotMarshalJSON     = "failed to marshal value to JSON"
	ErrDevDBFailedToInsert      = "database failed to insert document"
	ErrDevQueueFailedToPublish  = "queue failed to publish message"
	ErrDevQueueFailedToDeclare  = "queue failed to declare"
	ErrDevMinioFailedToPut      = "minio failed to store object in bucket %s"
	ErrDevUploadedFileTooLarge  = "uploaded file exceeds the %dMB limit"
	ErrDevServerPanicRecovered  = "recovered from panic while serving request"
	ErrDevServerDeadlineExceeds = "server deadline exceeded"
)

// ValidationErrorMessages maps validator tags to human sentences.
var ValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gte":      "must be greater than or equal to %s",
	"len":      "must be %s characters long",
	"mobile":   "must be a 10-digit mobile number starting with 6-9",
	"aadhar":   "must be a 12-digit number",
	"pan":      "must be a 10-character uppercase alphanumeric code",
}

// ValidationTagsWithParams lists tags whose message needs the tag parameter.
var ValidationTagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
	"gte":   true,
	"len":   true,
}
