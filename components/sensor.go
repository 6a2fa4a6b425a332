package components

import "github.com/automoto/bombspot/shared/scenegraph"

// SensorData marks a proximity sensor. The role is fixed at spawn.
type SensorData = scenegraph.SensorData

var Sensor = scenegraph.Sensor
