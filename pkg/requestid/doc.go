// Package requestid carries request correlation ids through context.Context.
//
// Outgoing calls made by pkg/apirequest send the id in the "X-Request-ID"
// header. Ensure reuses an id already stored in the context when it is a
// short token of letters, digits, '-' or '_'; otherwise it generates a new
// UUIDv4 with github.com/google/uuid.
//
//	ctx, id := requestid.Ensure(ctx)
//	req.Header.Set(requestid.Header, id)
//
// LoggerExtractor plugs into pkg/logger so the id appears on every log
// record written with that context.
package requestid
