/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific client-input, configuration, or system faults
inside the server. Clients only ever see the message and the HTTP status.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1007

	// ErrMethodNotAllowed indicates that the route does not accept the request method.
	ErrMethodNotAllowed = 1008

	// ErrRouteNotFound indicates that no route matches the request path.
	ErrRouteNotFound = 1009
)

// 2xxx: Room Token and Streaming Errors
const (
	// ErrRoomTitleRequired indicates that the token request carried no roomTitle.
	ErrRoomTitleRequired = 2101

	// ErrRoomTitleInvalid indicates that the roomTitle normalized to an empty slug.
	ErrRoomTitleInvalid = 2102

	// ErrUpstreamUnavailable indicates that the live stream upstream could not be reached.
	ErrUpstreamUnavailable = 2201
)

// 3xxx: Viewer, Social, and Security Errors
const (
	// ErrUnauthorized indicates a missing or invalid viewer session.
	ErrUnauthorized = 3001

	// ErrInvalidUserID indicates that a referenced user id is not a valid UUID.
	ErrInvalidUserID = 3101

	// ErrCannotShieldSelf indicates that a viewer tried to shield themselves.
	ErrCannotShieldSelf = 3102

	// ErrInvalidGiftAmount indicates that a gift amount was not a positive whole number.
	ErrInvalidGiftAmount = 3201

	// ErrCannotGiftSelf indicates that sender and recipient of a gift are the same viewer.
	ErrCannotGiftSelf = 3202

	// ErrGiftMessageTooLong indicates that the gift message exceeded its length limit.
	ErrGiftMessageTooLong = 3203

	// ErrProcedureRejected indicates that a stored procedure reported a business error.
	// Its message is replaced with the procedure's own message.
	ErrProcedureRejected = 3301

	// ErrFileSizeTooLarge indicates that an uploaded file exceeds the size limit.
	ErrFileSizeTooLarge = 3401

	// ErrFileTypeInvalid indicates that an uploaded file is not an allowed image type.
	ErrFileTypeInvalid = 3402
)

// 4xxx: Server Configuration Errors
const (
	// ErrSigningSecretMissing indicates that no token signing secret is configured.
	ErrSigningSecretMissing = 4001

	// ErrFeatureNotConfigured indicates that a backing service (database, storage) is not configured.
	ErrFeatureNotConfigured = 4002
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrFileStorageFailed indicates that the storage backend rejected a request.
	ErrFileStorageFailed = 5001
)
