// Package docs registers the OpenAPI description served at /swagger/doc.json.
// Regenerate with swag init -g cmd/server/main.go.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Host login",
                "parameters": [
                    {"description": "credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/resources": {
            "get": {
                "produces": ["application/json"],
                "tags": ["resources"],
                "summary": "List study resources",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Resource"}}}
                }
            }
        },
        "/quiz/{slug}/sessions": {
            "post": {
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Start a quiz session",
                "parameters": [
                    {"type": "string", "description": "quiz slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.StartResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sessions/current": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Current session state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.QuizView"}}
                }
            }
        },
        "/sessions/current/answers": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Select an answer for the current question",
                "parameters": [
                    {"description": "answer", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AnswerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.QuizView"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sessions/current/next": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Move to the next question or the results",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.QuizView"}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sessions/current/restart": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Restart the quiz",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.QuizView"}}
                }
            }
        },
        "/quizzes": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "List quizzes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Quiz"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Create a quiz",
                "parameters": [
                    {"description": "quiz", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Quiz"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/quizzes/{slug}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Get a quiz",
                "parameters": [
                    {"type": "string", "description": "quiz slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Quiz"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Replace a quiz",
                "parameters": [
                    {"type": "string", "description": "quiz slug", "name": "slug", "in": "path", "required": true},
                    {"description": "quiz", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Quiz"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/quizzes/{slug}/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Attempt counters and best scores",
                "parameters": [
                    {"type": "string", "description": "quiz slug", "name": "slug", "in": "path", "required": true},
                    {"type": "integer", "description": "number of best scores", "name": "top", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.QuizStats"}}
                }
            }
        },
        "/quizzes/{slug}/attempts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Most recent finished attempts",
                "parameters": [
                    {"type": "string", "description": "quiz slug", "name": "slug", "in": "path", "required": true},
                    {"type": "integer", "description": "max attempts", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Attempt"}}}
                }
            }
        }
    },
    "definitions": {
        "model.LoginRequest": {
            "type": "object",
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "model.LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "hostId": {"type": "string"}}
        },
        "model.Resource": {
            "type": "object",
            "properties": {"title": {"type": "string"}, "link": {"type": "string"}, "position": {"type": "integer"}}
        },
        "model.Answer": {
            "type": "object",
            "properties": {"label": {"type": "string"}, "isCorrect": {"type": "boolean"}}
        },
        "model.Question": {
            "type": "object",
            "properties": {
                "prompt": {"type": "string"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/model.Answer"}}
            }
        },
        "model.Quiz": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "slug": {"type": "string"},
                "title": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/model.Question"}},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "model.QuizSession": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "quizSlug": {"type": "string"},
                "quizVersion": {"type": "string"},
                "state": {"type": "string", "enum": ["not_started", "in_progress", "finished"]},
                "questionIndex": {"type": "integer"},
                "score": {"type": "integer"},
                "answered": {"type": "boolean"},
                "selectedIndex": {"type": "integer"},
                "total": {"type": "integer"},
                "startedAt": {"type": "string"},
                "finishedAt": {"type": "string"}
            }
        },
        "model.Attempt": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "sessionId": {"type": "string"},
                "quizSlug": {"type": "string"},
                "score": {"type": "integer"},
                "total": {"type": "integer"},
                "percent": {"type": "integer"},
                "passed": {"type": "boolean"},
                "finishedAt": {"type": "string"}
            }
        },
        "model.QuizStats": {
            "type": "object",
            "properties": {
                "quizSlug": {"type": "string"},
                "attempts": {"type": "integer"},
                "passed": {"type": "integer"},
                "topScores": {"type": "array", "items": {"$ref": "#/definitions/model.ScoreEntry"}}
            }
        },
        "model.ScoreEntry": {
            "type": "object",
            "properties": {"sessionId": {"type": "string"}, "percent": {"type": "integer"}, "rank": {"type": "integer"}}
        },
        "quiz.Outcome": {
            "type": "object",
            "properties": {"score": {"type": "integer"}, "total": {"type": "integer"}, "percent": {"type": "integer"}, "passed": {"type": "boolean"}}
        },
        "view.Element": {
            "type": "object",
            "properties": {
                "tag": {"type": "string"},
                "id": {"type": "string"},
                "classes": {"type": "array", "items": {"type": "string"}},
                "attrs": {"type": "object", "additionalProperties": {"type": "string"}},
                "text": {"type": "string"},
                "disabled": {"type": "boolean"},
                "hidden": {"type": "boolean"},
                "children": {"type": "array", "items": {"$ref": "#/definitions/view.Element"}}
            }
        },
        "view.Page": {
            "type": "object",
            "properties": {"title": {"type": "string"}, "root": {"$ref": "#/definitions/view.Element"}}
        },
        "service.QuizView": {
            "type": "object",
            "properties": {
                "session": {"$ref": "#/definitions/model.QuizSession"},
                "outcome": {"$ref": "#/definitions/quiz.Outcome"},
                "celebrate": {"type": "boolean"},
                "token": {"type": "string"},
                "view": {"$ref": "#/definitions/view.Page"}
            }
        },
        "handler.StartResponse": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "session": {"$ref": "#/definitions/model.QuizSession"},
                "outcome": {"$ref": "#/definitions/quiz.Outcome"},
                "celebrate": {"type": "boolean"},
                "token": {"type": "string"},
                "view": {"$ref": "#/definitions/view.Page"}
            }
        },
        "handler.AnswerRequest": {
            "type": "object",
            "properties": {"answerIndex": {"type": "integer"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Studyhub API",
	Description:      "Study resources and a multiple choice quiz with scoring",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
