package config

type config struct {
	Server   server   `yaml:"server" mapstructure:"server"`
	Mysql    mysql    `yaml:"mysql" mapstructure:"mysql"`
	Redis    redis    `yaml:"redis" mapstructure:"redis"`
	RabbitMq rabbitmq `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Minio    minio    `yaml:"minio" mapstructure:"minio"`
	Jwt      jwt      `yaml:"jwt" mapstructure:"jwt"`
	Admin    admin    `yaml:"admin" mapstructure:"admin"`
	Jaeger   jaeger   `yaml:"jaeger" mapstructure:"jaeger"`
}

type server struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allow_origins" mapstructure:"allow_origins"`
	Pprof        bool     `yaml:"pprof"`
}

// Driver 为 mysql 或 sqlite, sqlite 时只使用 Path
type mysql struct {
	Driver   string `yaml:"driver"`
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
	Path     string `yaml:"path"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	Bucket    string `yaml:"bucket"`
	PublicURL string `yaml:"public_url" mapstructure:"public_url"`
}

type jwt struct {
	Secret  string `yaml:"secret"`
	Timeout string `yaml:"timeout"`
}

// PasswordHash 为 bcrypt 之后的密文
type admin struct {
	Email        string `yaml:"email"`
	PasswordHash string `yaml:"password_hash" mapstructure:"password_hash"`
	Name         string `yaml:"name"`
}

type jaeger struct {
	AgentAddr   string `yaml:"agent_addr" mapstructure:"agent_addr"`
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
}
