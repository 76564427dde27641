// Package memory provides the in-process fallback implementations of the
// outbound ports: the order store, the menu catalog (from embedded data),
// and the user directory. The fallback adapters in the fallback package
// delegate to these when the remote document database is unreachable.
package memory
