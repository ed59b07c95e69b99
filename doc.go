// Package dockmotion computes the pose of a semi-trailer truck through a
// repeating dock maneuver: approach, buttonhook turn, reverse to the dock,
// load, and departure. It drives the truck animation at the mill's two
// truck bays.
//
// The package is a pure function of time. There is no internal state, no
// I/O, and no frame loop: a renderer calls [Controller.Pose] (or [Yard.At])
// once per frame with the current simulation time and maps the returned
// [Pose] onto its transform hierarchy and lamp materials. Two calls with the
// same inputs return identical poses, which also makes every call safe from
// any goroutine.
//
// # Quick start
//
//	yard := dockmotion.NewYard()
//	// each frame:
//	ship, recv := yard.At(simTime, wallClock)
//	truck.SetTransform(ship.X, ship.Z, ship.Rotation)
//	trailer.SetArticulation(ship.TrailerAngle)
//	lamps.SetReverse(ship.ReverseLights)
//
// # The cycle
//
// One cycle is [CycleLength] time units, partitioned into fixed-duration
// phases (see [Phase]) dispatched by elapsed time. Adjacent phases share
// their boundary waypoints, so position and heading are continuous across
// the whole cycle by construction. The receiving bay runs the shipping
// maneuver mirrored through the yard origin and staggered by half a cycle.
//
// # Conventions
//
// The ground plane is (X, Z) in world units with Y implied at ground level.
// Headings and articulation angles are radians; rotation 0 faces +Z with
// forward vector (sin r, cos r). Easing curves come from
// [github.com/tanema/gween/ease].
package dockmotion
