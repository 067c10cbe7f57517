package ephem

// Config выбор реализации эфемерид. Реализация фиксируется на старте
// процесса: auto пробует точную и откатывается к аналитической, строгие
// значения не откатываются никогда.
type Config struct {
	Implementation string `envconfig:"IMPLEMENTATION" default:"auto"` // auto | vsop87 | analytic
	DataDir        string `envconfig:"DATA_DIR" default:"/var/lib/jyotish/vsop87"`
	S3Prefix       string `envconfig:"S3_PREFIX" default:"vsop87"`
}
