// Package solver is the client side of the remote solver contract.
//
// A request is a multipart POST to <base>/run carrying two fields:
// "algorithm" (one of [Skyline], [BFS], [DFS], [Hull]) and "file" (the raw
// problem text). The response is JSON shaped per algorithm and is decoded
// into a [Result] holding exactly one of [SkylineResult], [TraversalResult]
// or [HullResult].
//
// # Error Channels
//
// Two kinds of failure are reported, both as *errors.Error values whose
// message is meant to be shown verbatim with errors.UserMessage:
//
//   - errors.ErrCodeInvalidResponse: the body is not JSON at all. The message
//     is "Server did not return JSON:" followed by the raw body.
//   - errors.ErrCodeSolver: a non-2xx status or a JSON body with an "error"
//     field. The message is "Server error:" followed by the error text, or
//     by "HTTP <status>" when the body names none.
//
// Transport failures (connection refused, timeouts) are reported with
// errors.ErrCodeNetwork or errors.ErrCodeTimeout. Requests are never retried.
//
// [Decode] applies the same rules to a body read from disk, which lets a
// saved solver response be replayed without a server.
package solver
