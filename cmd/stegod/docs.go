package main

// General API documentation for swaggo. Run `make swagger-gen` to generate docs.
//
// @title           stegod API
// @version         1.0
// @description     HTTP API for text-steganography encode/decode over a managed generative model.
//
// @contact.name   stegod maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
