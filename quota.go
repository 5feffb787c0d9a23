package friday

// GuestMessageLimit is the number of messages (both senders counted) a guest
// conversation may hold before further sends are rejected.
const GuestMessageLimit = 10

// MayAcceptGuestMessage reports whether a guest conversation that already
// holds count messages may accept another one. Authenticated senders are never
// quota-gated, so this is only consulted in guest mode.
func MayAcceptGuestMessage(count int) bool {
	return count < GuestMessageLimit
}
