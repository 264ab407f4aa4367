package catalog

import "github.com/mengfei0517/robocasa/pkg/scene"

// cabinetWall is the default cabinet wall thickness.
const cabinetWall = 0.03

var builtinSpecs = map[scene.Kind]KindSpec{
	scene.KindWall: {
		DefaultSize: scene.Vec3{0, 0.02, 2.5},
	},
	scene.KindFloor: {
		DefaultSize: scene.Vec3{0, 0, 0.05},
		TopSurface:  true,
	},
	scene.KindWallAccessory: {
		DefaultSize: scene.Vec3{0.6, 0.05, 0.4},
	},
	scene.KindCounter: {
		DefaultSize: scene.Vec3{1.0, 0.6, 0.9},
		TopSurface:  true,
	},
	scene.KindStove: {
		DefaultSize: scene.Vec3{0.76, 0.65, 0.9},
		TopSurface:  true,
	},
	scene.KindSink: {
		DefaultSize: scene.Vec3{0.6, 0.5, 0.25},
		HasInterior: true, WallThickness: 0.02,
	},
	scene.KindSingleCabinet: {
		DefaultSize: scene.Vec3{0.45, 0.35, 0.7},
		HasInterior: true, WallThickness: cabinetWall,
		Openable:   true,
		TopSurface: true,
	},
	scene.KindHingeCabinet: {
		DefaultSize: scene.Vec3{0.9, 0.35, 0.7},
		HasInterior: true, WallThickness: cabinetWall,
		Openable:   true,
		TopSurface: true,
	},
	scene.KindOpenCabinet: {
		DefaultSize: scene.Vec3{0.9, 0.35, 0.9},
		HasInterior: true, WallThickness: cabinetWall,
		TopSurface: true,
	},
	scene.KindDrawer: {
		DefaultSize: scene.Vec3{0.6, 0.6, 0.2},
		HasInterior: true, WallThickness: cabinetWall,
		Openable: true,
	},
	scene.KindPanelCabinet: {
		DefaultSize: scene.Vec3{0.6, 0.6, 0.7},
	},
	scene.KindHousing: {
		HasInterior: true, WallThickness: cabinetWall,
		TopSurface: true,
	},
	scene.KindStack: {
		DefaultSize: scene.Vec3{0.6, 0.6, 2.3},
		TopSurface:  true,
	},
	scene.KindAppliance: {
		DefaultSize: scene.Vec3{0.6, 0.6, 0.5},
		Openable:    true,
		TopSurface:  true,
	},
	scene.KindObject: {
		DefaultSize: scene.Vec3{0.1, 0.1, 0.1},
	},
}
