package logs

// Fields collects the key value pairs attached to a log entry
type Fields interface {
	Add(key string, value interface{})
}

// Loggable is implemented by values that know how to describe
// themselves in a log entry
type Loggable interface {
	Log(fields Fields)
}

// MapFields is the simplest Loggable, a set of fields
// that are copied as they are into the entry
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (m MapFields) Add(key string, value interface{}) {
	m[key] = value
}

// Log implementation of Loggable for MapFields
func (m MapFields) Log(fields Fields) {
	for k, v := range m {
		fields.Add(k, v)
	}
}
