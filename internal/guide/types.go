package guide

// Environment describes a remote development environment as reported by the
// environment registry. Optional fields are pointers: nil means the registry
// did not supply a value.
type Environment struct {
	ID   string `yaml:"id" mapstructure:"id" json:"id"`
	Name string `yaml:"name" mapstructure:"name" json:"name"`

	// ContainerUser is the OS user inside the environment's container.
	// Defaults to "root" when nil or empty.
	ContainerUser *string `yaml:"container_user,omitempty" mapstructure:"container_user" json:"container_user,omitempty"`

	// SSHPort is where the environment's sshd listens, as seen from the jump host.
	SSHPort int `yaml:"ssh_port" mapstructure:"ssh_port" json:"ssh_port"`

	// WorkerServerName is the machine hosting the environment.
	// Nil or empty means the environment runs on the controlling host.
	WorkerServerName *string `yaml:"worker_server_name,omitempty" mapstructure:"worker_server_name" json:"worker_server_name,omitempty"`

	// WorkerServerBaseURL is the worker's API URL. Its hostname, when it
	// parses, wins over WorkerServerName as the jump host address.
	WorkerServerBaseURL *string `yaml:"worker_server_base_url,omitempty" mapstructure:"worker_server_base_url" json:"worker_server_base_url,omitempty"`
}

// Guide holds the connection instructions derived from an Environment.
type Guide struct {
	JumpHost       string `json:"jump_host"`
	TargetUser     string `json:"target_user"`
	JumpAlias      string `json:"jump_alias"`
	EnvAlias       string `json:"env_alias"`
	OneShotCommand string `json:"one_shot_command"`
	SSHConfig      string `json:"ssh_config"`
}

// String returns a pointer to s, for filling optional Environment fields.
func String(s string) *string {
	return &s
}

// value dereferences an optional field, treating nil as empty.
func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Label returns the human-facing label of the environment: its name, or
// its ID when the name is empty.
func (e Environment) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return e.ID
}

// HasWorker reports whether the environment runs on a separate worker server.
func (e Environment) HasWorker() bool {
	return value(e.WorkerServerName) != ""
}
