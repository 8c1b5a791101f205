package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Sunrise School CMS API",
        "description": "Content and media management for the school website",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "Site", "description": "Public read-only content"},
        {"name": "Auth", "description": "Admin authentication"},
        {"name": "Hero", "description": "Landing page carousel"},
        {"name": "Team", "description": "Staff profiles"},
        {"name": "Gallery", "description": "Photo gallery"},
        {"name": "Notices", "description": "Notice board"},
        {"name": "Media", "description": "Image uploads"},
        {"name": "Exports", "description": "CSV and PDF downloads"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/site/hero-images": {
            "get": {
                "tags": ["Site"],
                "summary": "List active hero images",
                "responses": {
                    "200": {"$ref": "#/responses/ListResponse"}
                }
            }
        },
        "/site/team-members": {
            "get": {
                "tags": ["Site"],
                "summary": "List active team members",
                "responses": {
                    "200": {"$ref": "#/responses/ListResponse"}
                }
            }
        },
        "/site/gallery-images": {
            "get": {
                "tags": ["Site"],
                "summary": "List active gallery images",
                "parameters": [
                    {"name": "category", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"$ref": "#/responses/ListResponse"}
                }
            }
        },
        "/site/notices": {
            "get": {
                "tags": ["Site"],
                "summary": "List active notices",
                "responses": {
                    "200": {"$ref": "#/responses/ListResponse"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Sign in with email and password",
                "responses": {
                    "200": {"description": "Access token issued"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current user profile and roles",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Profile"},
                    "401": {"description": "Missing or invalid token"}
                }
            }
        },
        "/admin/hero-images": {
            "get": {
                "tags": ["Hero"],
                "summary": "List hero images",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"$ref": "#/responses/ListResponse"}}
            },
            "post": {
                "tags": ["Hero"],
                "summary": "Add a hero image",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"$ref": "#/responses/ListResponse"}}
            }
        },
        "/admin/hero-images/reorder": {
            "put": {
                "tags": ["Hero"],
                "summary": "Move a hero image",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"$ref": "#/responses/ListResponse"}}
            }
        },
        "/admin/team-members": {
            "get": {
                "tags": ["Team"],
                "summary": "List team members",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"$ref": "#/responses/ListResponse"}}
            },
            "post": {
                "tags": ["Team"],
                "summary": "Add a team member",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"$ref": "#/responses/ListResponse"}}
            }
        },
        "/admin/gallery-images": {
            "get": {
                "tags": ["Gallery"],
                "summary": "List gallery images",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"$ref": "#/responses/ListResponse"}}
            },
            "post": {
                "tags": ["Gallery"],
                "summary": "Add a gallery image",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"$ref": "#/responses/ListResponse"}}
            }
        },
        "/admin/notices": {
            "get": {
                "tags": ["Notices"],
                "summary": "List notices",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"$ref": "#/responses/ListResponse"}}
            },
            "post": {
                "tags": ["Notices"],
                "summary": "Add a notice",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"$ref": "#/responses/ListResponse"}}
            }
        },
        "/admin/uploads": {
            "post": {
                "tags": ["Media"],
                "summary": "Upload images, optionally cropped",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "responses": {
                    "200": {"description": "Per-file settled results"}
                }
            }
        },
        "/admin/exports/notices": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download notices as CSV or PDF",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "File attachment"}}
            }
        }
    },
    "responses": {
        "ListResponse": {
            "description": "Full collection in display order",
            "schema": {"$ref": "#/definitions/ResponseEnvelope"}
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"type": "object"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
