package config

type InternalConfig struct {
	App App
	JWT JWT
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	Address                        string
	Timezone                       string
	EndpointPrefix                 string
	MaxRequests                    int
	ShutdownTimeout                int
	LoginSessionExpiredTimeInHours int
	DischargeMailRecipient         string
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
