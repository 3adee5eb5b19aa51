package handler

const (
	// ServiceName is reported by the root and health endpoints.
	ServiceName = "ScottLMS"
	// Version is the API version reported by the root and health endpoints.
	Version = "1.0.0"
)
