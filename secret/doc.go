// Package secret sources the cache's signing secret from configuration.
//
// It supports:
//   - Strict environment expansion (see ExpandEnvStrict)
//   - Pluggable secret providers (see Provider + Registry)
//   - Resolving secret references in configuration values (see Resolver)
//
// References use the prefix "secretref:":
//
//	secretref:env:TRANSCACHE_SIGNING_SECRET
//
// ResolveBytes additionally decodes "base64:" prefixed material, since
// signing secrets are binary.
package secret
