package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often idle streams get a ping
const KeepaliveInterval = 30 * time.Second

// Stream event types not produced by the game
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// QueryParamTypes selects event types, comma separated
const QueryParamTypes = "types"

// Response headers
const (
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"
	HeaderConnection   = "Connection"

	ContentTypeEventStream = "text/event-stream"
	CacheControlNoCache    = "no-cache"
	ConnectionKeepAlive    = "keep-alive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgBroadcastDropped   = "SSE broadcast buffer full, dropping event"
	LogMsgClientLagging      = "SSE client buffer full, skipping event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgStreamingFailed    = "Response does not support streaming"
	LogMsgSubscriberReady    = "SSE subscriber registered"
)

