// Package cache provides the single-slot store for the most recent review
// result.
//
// The web UI keeps the last result here for redisplay until the next review
// overwrites it or a validation failure clears it. Capacity is exactly one;
// the reviewer core itself holds no state between requests.
package cache
