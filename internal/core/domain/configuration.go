package domain

import "strings"

// Category selects which configuration variant a device carries.
type Category string

const (
	CategorySensor  Category = "sensor"
	CategoryLock    Category = "lock"
	CategoryCamera  Category = "camera"
	CategoryGeneric Category = "generic"
)

const (
	minReportInterval = 1
	maxReportInterval = 60
	minThreshold      = 0
	maxThreshold      = 100
)

// Resolutions a camera may be set to.
var Resolutions = []string{"720p", "1080p", "4K"}

type SensorConfig struct {
	ReportInterval int // minutes
	Threshold      int
}

type LockConfig struct {
	AutoLock    bool
	PinRequired bool
}

type CameraConfig struct {
	Resolution      string
	MotionDetection bool
}

// Configuration is a tagged union: exactly the variant named by Category is
// non-nil (none for CategoryGeneric).
type Configuration struct {
	Category Category
	Sensor   *SensorConfig
	Lock     *LockConfig
	Camera   *CameraConfig
}

// ConfigPatch carries the keys to overwrite; nil fields are left untouched.
type ConfigPatch struct {
	ReportInterval  *int
	Threshold       *int
	AutoLock        *bool
	PinRequired     *bool
	Resolution      *string
	MotionDetection *bool
}

// ParseCategory is case-insensitive; empty is returned as "".
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case "", CategorySensor, CategoryLock, CategoryCamera, CategoryGeneric:
		return c, nil
	}
	return "", invalid("category", "must be one of sensor, lock, camera, generic")
}

// CategoryForName infers the category from a device name such as
// "Humidity Sensor" or "Smart Lock".
func CategoryForName(name string) Category {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "sensor"):
		return CategorySensor
	case strings.Contains(n, "lock"):
		return CategoryLock
	case strings.Contains(n, "camera"):
		return CategoryCamera
	}
	return CategoryGeneric
}

// DefaultConfiguration returns the factory settings for a category.
func DefaultConfiguration(c Category) Configuration {
	switch c {
	case CategorySensor:
		return Configuration{Category: c, Sensor: &SensorConfig{ReportInterval: 5, Threshold: 30}}
	case CategoryLock:
		return Configuration{Category: c, Lock: &LockConfig{AutoLock: true, PinRequired: true}}
	case CategoryCamera:
		return Configuration{Category: c, Camera: &CameraConfig{Resolution: "1080p", MotionDetection: true}}
	}
	return Configuration{Category: CategoryGeneric}
}

// Validate checks the union shape and the value ranges of the active variant.
func (c Configuration) Validate() error {
	set := 0
	for _, present := range []bool{c.Sensor != nil, c.Lock != nil, c.Camera != nil} {
		if present {
			set++
		}
	}
	switch c.Category {
	case CategorySensor:
		if c.Sensor == nil || set != 1 {
			return invalid("configuration", "sensor category requires only sensor settings")
		}
		return validateSensor(*c.Sensor)
	case CategoryLock:
		if c.Lock == nil || set != 1 {
			return invalid("configuration", "lock category requires only lock settings")
		}
	case CategoryCamera:
		if c.Camera == nil || set != 1 {
			return invalid("configuration", "camera category requires only camera settings")
		}
		return validateResolution(c.Camera.Resolution)
	case CategoryGeneric:
		if set != 0 {
			return invalid("configuration", "generic category has no settings")
		}
	default:
		return invalid("configuration.category", "unknown category")
	}
	return nil
}

// Apply merges p into a copy of c. Keys that do not belong to the category
// are rejected and c is returned unchanged.
func (c Configuration) Apply(p ConfigPatch) (Configuration, error) {
	out := c.clone()
	sensorKeys := p.ReportInterval != nil || p.Threshold != nil
	lockKeys := p.AutoLock != nil || p.PinRequired != nil
	cameraKeys := p.Resolution != nil || p.MotionDetection != nil

	switch {
	case sensorKeys && c.Category != CategorySensor,
		lockKeys && c.Category != CategoryLock,
		cameraKeys && c.Category != CategoryCamera:
		return c, invalid("configuration", "key not valid for "+string(c.Category)+" devices")
	}

	switch c.Category {
	case CategorySensor:
		if p.ReportInterval != nil {
			out.Sensor.ReportInterval = *p.ReportInterval
		}
		if p.Threshold != nil {
			out.Sensor.Threshold = *p.Threshold
		}
	case CategoryLock:
		if p.AutoLock != nil {
			out.Lock.AutoLock = *p.AutoLock
		}
		if p.PinRequired != nil {
			out.Lock.PinRequired = *p.PinRequired
		}
	case CategoryCamera:
		if p.Resolution != nil {
			out.Camera.Resolution = *p.Resolution
		}
		if p.MotionDetection != nil {
			out.Camera.MotionDetection = *p.MotionDetection
		}
	}

	if err := out.Validate(); err != nil {
		return c, err
	}
	return out, nil
}

// Empty reports whether the patch sets no key.
func (p ConfigPatch) Empty() bool {
	return p == ConfigPatch{}
}

func (c Configuration) clone() Configuration {
	if c.Sensor != nil {
		s := *c.Sensor
		c.Sensor = &s
	}
	if c.Lock != nil {
		l := *c.Lock
		c.Lock = &l
	}
	if c.Camera != nil {
		cam := *c.Camera
		c.Camera = &cam
	}
	return c
}

func validateSensor(s SensorConfig) error {
	if s.ReportInterval < minReportInterval || s.ReportInterval > maxReportInterval {
		return invalid("report_interval", "must be between 1 and 60 minutes")
	}
	if s.Threshold < minThreshold || s.Threshold > maxThreshold {
		return invalid("threshold", "must be between 0 and 100")
	}
	return nil
}

func validateResolution(r string) error {
	for _, ok := range Resolutions {
		if r == ok {
			return nil
		}
	}
	return invalid("resolution", "must be one of 720p, 1080p, 4K")
}
