// Package docs holds the OpenAPI document served under /swagger.
// It mirrors the swag annotations on the handlers in package http.
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
		"/listings": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"listings"
				],
				"summary": "Publish a listing",
				"parameters": [
					{
						"description": "NewListing",
						"name": "listing",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.NewListing"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/http.Listing"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"listings"
				],
				"summary": "List claimable listings, soonest expiry first",
				"parameters": [
					{
						"type": "integer",
						"description": "Page size",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page offset",
						"name": "offset",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/http.Listing"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				}
			}
		},
		"/listings/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"listings"
				],
				"summary": "Get a listing",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Listing ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Listing"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				}
			}
		},
		"/claims": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"claims"
				],
				"summary": "Request a listing",
				"parameters": [
					{
						"description": "NewClaim",
						"name": "claim",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.NewClaim"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/http.Claim"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/claims/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"claims"
				],
				"summary": "Get a claim",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Claim ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Claim"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				}
			},
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"claims"
				],
				"summary": "Accept or reject a claim",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Claim ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "ClaimDecision",
						"name": "decision",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.ClaimDecision"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.ClaimDecisionResult"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/deliveries/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"deliveries"
				],
				"summary": "Get a delivery",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Delivery ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Delivery"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				}
			},
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"deliveries"
				],
				"summary": "Advance a delivery or report its position",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Delivery ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "DeliveryUpdate",
						"name": "update",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.DeliveryUpdate"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Delivery"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/reviews": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"reputation"
				],
				"summary": "Review the other party of a delivered claim",
				"parameters": [
					{
						"description": "NewReview",
						"name": "review",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.NewReview"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/http.Review"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/rewards": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"reputation"
				],
				"summary": "Award or deduct points manually",
				"parameters": [
					{
						"description": "NewAward",
						"name": "award",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.NewAward"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/http.Award"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/users/{id}/points": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"reputation"
				],
				"summary": "Total reputation points of a user",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "User ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.UserPoints"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				}
			}
		},
		"/users/{id}/reviews": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"reputation"
				],
				"summary": "Reviews a user received, newest first",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "User ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/http.Review"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"http.Error": {
			"type": "object",
			"properties": {
				"code": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"http.NewListing": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"unit": {
					"type": "string"
				},
				"pickup_location": {
					"type": "string"
				},
				"expires_at": {
					"type": "string",
					"format": "date-time"
				}
			},
			"required": [
				"title",
				"quantity",
				"expires_at"
			]
		},
		"http.Listing": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"donor_id": {
					"type": "string",
					"format": "uuid"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"unit": {
					"type": "string"
				},
				"pickup_location": {
					"type": "string"
				},
				"expires_at": {
					"type": "string",
					"format": "date-time"
				},
				"status": {
					"type": "string"
				},
				"claimed_by": {
					"type": "string",
					"format": "uuid"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"http.NewClaim": {
			"type": "object",
			"properties": {
				"listing_id": {
					"type": "string",
					"format": "uuid"
				},
				"notes": {
					"type": "string"
				},
				"pickup_at": {
					"type": "string",
					"format": "date-time"
				}
			},
			"required": [
				"listing_id"
			]
		},
		"http.Claim": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"listing_id": {
					"type": "string",
					"format": "uuid"
				},
				"claimant_id": {
					"type": "string",
					"format": "uuid"
				},
				"status": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"pickup_at": {
					"type": "string",
					"format": "date-time"
				},
				"requested_at": {
					"type": "string",
					"format": "date-time"
				},
				"decided_at": {
					"type": "string",
					"format": "date-time"
				},
				"completed_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"http.ClaimDecision": {
			"type": "object",
			"properties": {
				"accept": {
					"type": "boolean"
				}
			},
			"required": [
				"accept"
			]
		},
		"http.ClaimDecisionResult": {
			"type": "object",
			"properties": {
				"claim": {
					"$ref": "#/definitions/http.Claim"
				},
				"delivery": {
					"$ref": "#/definitions/http.Delivery"
				},
				"rejected": {
					"type": "array",
					"items": {
						"type": "string",
						"format": "uuid"
					}
				}
			}
		},
		"http.DeliveryUpdate": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"agent": {
					"type": "string"
				},
				"lat": {
					"type": "number"
				},
				"long": {
					"type": "number"
				},
				"eta": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"http.Position": {
			"type": "object",
			"properties": {
				"lat": {
					"type": "number"
				},
				"long": {
					"type": "number"
				}
			}
		},
		"http.Delivery": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"claim_id": {
					"type": "string",
					"format": "uuid"
				},
				"listing_id": {
					"type": "string",
					"format": "uuid"
				},
				"status": {
					"type": "string"
				},
				"agent": {
					"type": "string"
				},
				"position": {
					"$ref": "#/definitions/http.Position"
				},
				"eta": {
					"type": "string",
					"format": "date-time"
				},
				"delivered_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"http.NewReview": {
			"type": "object",
			"properties": {
				"claim_id": {
					"type": "string",
					"format": "uuid"
				},
				"reviewee_id": {
					"type": "string",
					"format": "uuid"
				},
				"rating": {
					"type": "integer"
				},
				"comment": {
					"type": "string"
				}
			},
			"required": [
				"claim_id",
				"reviewee_id",
				"rating"
			]
		},
		"http.Review": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"claim_id": {
					"type": "string",
					"format": "uuid"
				},
				"reviewer_id": {
					"type": "string",
					"format": "uuid"
				},
				"reviewee_id": {
					"type": "string",
					"format": "uuid"
				},
				"rating": {
					"type": "integer"
				},
				"comment": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"http.NewAward": {
			"type": "object",
			"properties": {
				"user_id": {
					"type": "string",
					"format": "uuid"
				},
				"delta": {
					"type": "integer"
				},
				"reason": {
					"type": "string"
				},
				"source_key": {
					"type": "string"
				}
			},
			"required": [
				"user_id",
				"delta",
				"reason"
			]
		},
		"http.Award": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"user_id": {
					"type": "string",
					"format": "uuid"
				},
				"delta": {
					"type": "integer"
				},
				"reason": {
					"type": "string"
				},
				"source_key": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"http.UserPoints": {
			"type": "object",
			"properties": {
				"user_id": {
					"type": "string",
					"format": "uuid"
				},
				"points": {
					"type": "integer"
				},
				"entries": {
					"type": "integer"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "FoodShare API",
	Description:      "Donation, claim, delivery and reputation lifecycle.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
