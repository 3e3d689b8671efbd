package common

// Metadata keys persisted in the device-local metadata table.
const (
	MetadataKeyDeviceID   = "device_id"
	MetadataKeyLastSyncAt = "last_sync_at"
)

// Object key prefixes for promoted attachments.
const (
	ObservationObjectPrefix = "notes"
	MeasurementObjectPrefix = "sketches"
)

// DeviceIDHeader is the gRPC metadata key carrying the device id.
const DeviceIDHeader = "x-device-id"
