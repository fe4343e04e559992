package errors

var (
	// Domain errors — used in usecase/repository
	ErrTargetUserNotFound   = NotFound("target user not found")
	ErrConversationNotFound = NotFound("conversation not found")
	ErrAmbiguousTarget      = FailedPrecondition("username is not unique; supply a discriminator")
	ErrInvalidTarget        = InvalidArg("target must be a user id, \"username#disc\" token, or username")
	ErrSelfConversation     = InvalidArg("cannot open a conversation with yourself")
	ErrNotParticipant       = Forbidden("not a participant of this conversation")
	ErrContentLength        = InvalidArg("message content must be 1-8000 characters")
	ErrInvalidCursor        = InvalidArg("invalid pagination cursor")

	// Codec errors
	ErrBodyAuthentication   = DataLoss("message body failed authentication")
	ErrMalformedBody        = InvalidArg("malformed encrypted message body")
	ErrEncryptionKeyMissing = FailedPrecondition("message encryption key is not configured")
	ErrEncryptionKeyLength  = FailedPrecondition("message encryption key must decode to 32 bytes")
)

func ErrConversationCreateFailed(cause error) error {
	return Wrap(CodeInternal, "failed to create conversation", cause)
}

func ErrMessageStoreFailed(cause error) error {
	return Wrap(CodeInternal, "failed to store message", cause)
}
