// SPDX-License-Identifier: Unlicense OR MIT

/*
Package router tracks, for a single device engaged in a gesture, which
windows are receiving which touch pointers, and resolves the conflicts
that arise when several windows could receive the same pointer:
slippery transfer, exclusive pilfering, hover tracking and dispatch
mode downgrade.

The routing state is a plain synchronous data structure. It performs
no I/O, owns no goroutines and does no locking; it must be owned by
the single execution context that serializes touch routing decisions
for its device. It does not decide which windows are candidates for an
event; callers supply resolved window handles, and the state tracks
how pointers are allocated among them as the gesture evolves.
*/
package router
