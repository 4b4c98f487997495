// Package sessions persists the signed-in identity in the client's local
// SQLite file so a restart resumes the same user.
package sessions
