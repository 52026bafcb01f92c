package main

import "github.com/lectern/classroom-api/cmd"

// @title           Classroom API
// @version         1.0.0
// @description     A classroom management API with lecture audio transcription
// @contact.name    API Support
// @contact.url     https://github.com/lectern/classroom-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT issued by /api/v1/auth/login
func main() {
	cmd.Execute()
}
