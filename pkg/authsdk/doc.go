/*
Package authsdk provides a client SDK for the accounts service.

# Overview

Every endpoint answers with the same JSON envelope:

	{"success": true, "statusCode": 200, "message": "login successful", "data": {...}}

The SDK decodes the envelope, returns the typed payload on success and an
*APIError carrying the status and message otherwise.

# SDKClient vs Session

  - SDKClient: public operations (login, registration, profile fetch, health)
  - Session: operations that need the caller's access token (update, delete)

	client := authsdk.NewSDKClient("https://accounts.example.com")

	err := client.CreateUser(ctx, authsdk.CreateUserRequest{...})

	session, err := client.AuthenticateWithPassword(ctx, email, password)
	user, err := session.UpdateUser(ctx, authsdk.UpdateUserRequest{FirstName: &name})

Tokens are not refreshed automatically: the service has no refresh endpoint,
so once the access token expires the caller logs in again.

# Validation

Request types expose Validate() which returns a field-to-message map (nil
when valid). The server runs the same checks; the client can use them to fail
fast before sending a request.

# Error Handling

	var apiErr *authsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
		// email taken
	}
*/
package authsdk
