package constant

const (
	ContextKeyRequestID = "requestid"

	// SessionKeyAccountID is the session entry holding the authenticated
	// admin's account id.
	SessionKeyAccountID = "accountID"

	// LocalsKeyAccount is the fiber locals key under which the auth
	// middleware stores the resolved *model.Account for gated handlers.
	LocalsKeyAccount = "account"

	SessionCookieName = "milimani_session"
)
