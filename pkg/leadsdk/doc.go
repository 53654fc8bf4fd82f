/*
Package leadsdk provides a client SDK for the leads service callable API.

Create a Client for unauthenticated operations (token grant, registration)
and call WithToken to derive an authenticated client for the callables:

	client := leadsdk.NewClient("https://leads.example.com")

	tok, err := client.Token(ctx, leadsdk.TokenRequest{
		Email:    "user@example.com",
		Password: "secret",
	})
	if err != nil {
		// handle
	}

	session := client.WithToken(tok.AccessToken)
	resp, err := session.CreateLeadForConsultation(ctx, leadsdk.CreateLeadRequest{
		ConsultationID: consultationID,
		UserID:         userID,
	})

All failing calls return an *APIError carrying the service's error code
(unauthenticated, permission_denied, invalid_argument, not_found, internal)
and a human-readable description.
*/
package leadsdk
