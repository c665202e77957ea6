// Package domain contains the shared types of the ChillMCP core: the
// observable counter snapshot, break profiles, and the rendered response
// contract consumed by external validators.
package domain
