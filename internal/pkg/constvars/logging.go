package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingDurationKey    = "duration"
	LoggingSuccessKey     = "success"
	LoggingResourceKey    = "resource"
	LoggingRecordIDKey    = "record_id"
	LoggingRecordCountKey = "record_count"
	LoggingBackendURLKey  = "backend_url"
	LoggingActionKey      = "action"
	LoggingCacheHitKey    = "cache_hit"
	LoggingObjectNameKey  = "object_name"
)
