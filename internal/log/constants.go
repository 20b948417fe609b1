package log

const (
	KeyAppName            = "app"
	KeyRequestID          = "requestId"
	KeyProcess            = "process"
	KeyTag                = "tag"
	KeyConfig             = "config"
	KeyRequestBody        = "requestBody"
	KeyRequestHeader      = "requestHeader"
	KeyRequestHost        = "host"
	KeyRequestIp          = "requesterIP"
	KeyRequestMethod      = "requestMethod"
	KeyRequestProcessedAt = "requestProcessedAt"
	KeyRequestURI         = "requestURI"
	KeyRequestURL         = "requestURL"
	KeyTraceID            = "traceId"
	KeySpanID             = "spanId"
	KeyDbURL              = "dbUrl"
	KeyCacheKey           = "cacheKey"
	KeyCartID             = "cartId"
	KeyCartItemID         = "cartItemId"
	KeyServiceID          = "serviceId"
	KeyCouponCode         = "couponCode"
	KeyOrderID            = "orderId"
	KeyCart               = "cart"
	KeyBreakdown          = "breakdown"
)
