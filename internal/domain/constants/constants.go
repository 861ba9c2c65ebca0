// Package constants holds shared provider identifiers.
package constants

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// IdentityProviderLocal selects the JWT/bcrypt provider for development.
	IdentityProviderLocal = "local"
	// IdentityProviderFirebase selects Firebase Authentication.
	IdentityProviderFirebase = "firebase"

	// PaymentProviderSandbox selects the always-succeeding sandbox processor.
	PaymentProviderSandbox = "sandbox"
	// PaymentProviderHTTP selects the HTTP payment gateway adapter.
	PaymentProviderHTTP = "http"
)
