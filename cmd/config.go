package cmd

type Config struct {
	HTTPPort              string
	MongoURI              string
	RegistrationWebappURL string
}
