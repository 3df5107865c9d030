// SPDX-License-Identifier: Unlicense OR MIT

/*
Package eagl implements view contexts and drawables on iOS with
EAGLContext and CAEAGLLayer.

EAGL binds contexts per thread; lock the goroutine using a Platform
with runtime.LockOSThread.
*/
package eagl
