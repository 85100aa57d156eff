// Package ecs provides ECS adapters for flywheel's selection notifications.
//
// The primary adapter is [NewDonburiSink], which bridges flywheel selection
// changes into a [Donburi] world as typed events. Subscribe to
// [SelectionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	ecs.Connect(world, wheel)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
