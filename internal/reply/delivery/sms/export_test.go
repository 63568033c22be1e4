package sms

import "net/url"

// ComputeSignatureForTest exposes the signature scheme to handler tests.
func ComputeSignatureForTest(authToken, fullURL string, form url.Values) string {
	return computeSignature(authToken, fullURL, form)
}
