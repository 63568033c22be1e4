package sms

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/url"
	"sort"
)

// computeSignature builds the Twilio webhook signature: base64 of
// HMAC-SHA1 over the full request URL followed by the POST params
// concatenated as key+value in sorted key order.
func computeSignature(authToken, fullURL string, form url.Values) string {
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	payload := fullURL
	for _, k := range keys {
		for _, v := range form[k] {
			payload += k + v
		}
	}

	mac := hmac.New(sha1.New, []byte(authToken))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// validSignature checks the X-Twilio-Signature header in constant time.
func validSignature(authToken, fullURL string, form url.Values, got string) bool {
	want := computeSignature(authToken, fullURL, form)
	return hmac.Equal([]byte(want), []byte(got))
}
