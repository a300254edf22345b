package common

// AccessTokenHeaderName is the gRPC/HTTP metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ChannelSeparator joins a table name and a ledger id into a push channel key,
// e.g. "telegrams:9b1c...".
const ChannelSeparator = ":"
