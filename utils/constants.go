// File: utils/constants.go
package utils

import "time"

// CartCachePrefix is the prefix used for Redis cart keys.
const CartCachePrefix = "cart:"

// CartCacheTTL is the sliding time-to-live for stored carts.
const CartCacheTTL = 7 * 24 * time.Hour

// SessionCachePrefix is the prefix used for Redis checkout session keys.
const SessionCachePrefix = "checkout:"

// SessionCacheTTL is the time-to-live for checkout sessions.
const SessionCacheTTL = 30 * time.Minute

// PendingLinkPrefix is the prefix used for pending guest-order link tokens.
const PendingLinkPrefix = "pendinglink:"

// PendingLinkTTL is the time-to-live for pending guest-order link tokens.
const PendingLinkTTL = 30 * 24 * time.Hour

// PendingLinkCookieName is the cookie carrying the pending order id for
// the sign-up flow to pick up from a different navigation context.
const PendingLinkCookieName = "pending_order_link"

// PendingLinkCookieTTL is the lifetime of the pending-link cookie.
const PendingLinkCookieTTL = time.Hour
