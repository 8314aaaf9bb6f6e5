// Package docs registers the SACCO OpenAPI document built from the handler
// annotations in internal/handlers.
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
		"/api/admin/loans/pending": {
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
					"Admin"
				],
				"summary": "Loans awaiting a decision",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.LoanResponseDTO"
							}
						}
					},
					"204": {
						"description": "Nothing pending",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/admin/members": {
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
					"Admin"
				],
				"summary": "List all users",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.UserResponseDTO"
							}
						}
					},
					"403": {
						"description": "Admin role required",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/admin/members/{userID}": {
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Removes the user together with savings, loans and budget data",
				"tags": [
					"Admin"
				],
				"summary": "Delete a user",
				"parameters": [
					{
						"description": "User ID",
						"name": "userID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Admin role required",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"409": {
						"description": "Admins cannot delete themselves",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/admin/members/{userID}/role": {
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Admin"
				],
				"summary": "Change a user's role",
				"parameters": [
					{
						"description": "User ID",
						"name": "userID",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"description": "New role",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ChangeRoleRequestDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.UserResponseDTO"
						}
					},
					"400": {
						"description": "Invalid request",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Admin role required",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"422": {
						"description": "Unsupported role",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/admin/recommendations": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Runs the budget rules for all MEMBER users on a bounded worker pool",
				"produces": [
					"application/json"
				],
				"tags": [
					"Admin"
				],
				"summary": "Generate recommendations for every member",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.BatchResultDTO"
						}
					},
					"403": {
						"description": "Admin role required",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/admin/summary": {
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
					"Admin"
				],
				"summary": "Cooperative-wide totals",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SummaryResponseDTO"
						}
					},
					"403": {
						"description": "Admin role required",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/admin/withdrawals/pending": {
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
					"Admin"
				],
				"summary": "Withdrawals awaiting a decision",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.WithdrawalResponseDTO"
							}
						}
					},
					"204": {
						"description": "Nothing pending",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Admin role required",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/budget-categories/{categoryID}": {
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Budget"
				],
				"summary": "Change a budget category",
				"parameters": [
					{
						"description": "Category ID",
						"name": "categoryID",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"description": "Category",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CategoryRequestDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.CategoryResponseDTO"
						}
					},
					"404": {
						"description": "Category not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"Budget"
				],
				"summary": "Remove a budget category",
				"parameters": [
					{
						"description": "Category ID",
						"name": "categoryID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Category not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/loan-products": {
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
					"Loans"
				],
				"summary": "List loan products",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.LoanProductResponseDTO"
							}
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Admin"
				],
				"summary": "Create a loan product",
				"parameters": [
					{
						"description": "Product",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoanProductRequestDTO"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.LoanProductResponseDTO"
						}
					},
					"409": {
						"description": "Product name already exists",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"422": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/loan-products/{productID}": {
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
					"Loans"
				],
				"summary": "Get a loan product",
				"parameters": [
					{
						"description": "Product ID",
						"name": "productID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.LoanProductResponseDTO"
						}
					},
					"404": {
						"description": "Product not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/loans": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Files a PENDING loan. With a product the amount, term and savings collateral are checked against it.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Loans"
				],
				"summary": "Apply for a loan",
				"parameters": [
					{
						"description": "Application; user_id defaults to the caller",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoanApplicationRequestDTO"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.LoanResponseDTO"
						}
					},
					"403": {
						"description": "Applying for someone else",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Product or savings not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"422": {
						"description": "Amount, term or collateral rule violated",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/loans/{loanID}": {
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
					"Loans"
				],
				"summary": "Get a loan",
				"parameters": [
					{
						"description": "Loan ID",
						"name": "loanID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.LoanResponseDTO"
						}
					},
					"403": {
						"description": "Not the borrower",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Loan not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/loans/{loanID}/approve": {
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
					"Admin"
				],
				"summary": "Approve a pending loan",
				"parameters": [
					{
						"description": "Loan ID",
						"name": "loanID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.LoanResponseDTO"
						}
					},
					"404": {
						"description": "Loan not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"409": {
						"description": "Already processed",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/loans/{loanID}/reject": {
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
					"Admin"
				],
				"summary": "Reject a pending loan",
				"parameters": [
					{
						"description": "Loan ID",
						"name": "loanID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.LoanResponseDTO"
						}
					},
					"404": {
						"description": "Loan not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"409": {
						"description": "Already processed",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/loans/{loanID}/repayments": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Only APPROVED loans accept repayments",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Loans"
				],
				"summary": "Record a repayment",
				"parameters": [
					{
						"description": "Loan ID",
						"name": "loanID",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"description": "Repayment",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RepaymentRequestDTO"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.RepaymentResponseDTO"
						}
					},
					"404": {
						"description": "Loan not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"422": {
						"description": "Loan not approved or invalid amount",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
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
					"Loans"
				],
				"summary": "Repayments of a loan",
				"parameters": [
					{
						"description": "Loan ID",
						"name": "loanID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.RepaymentResponseDTO"
							}
						}
					},
					"204": {
						"description": "No repayments",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/recommendations/{recommendationID}": {
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"Budget"
				],
				"summary": "Dismiss a recommendation",
				"parameters": [
					{
						"description": "Recommendation ID",
						"name": "recommendationID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Recommendation not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/savings-products": {
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
					"Savings"
				],
				"summary": "List savings products",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.SavingsProductResponseDTO"
							}
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Admin"
				],
				"summary": "Create a savings product",
				"parameters": [
					{
						"description": "Product",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SavingsProductRequestDTO"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.SavingsProductResponseDTO"
						}
					},
					"403": {
						"description": "Admin role required",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"409": {
						"description": "Product name already exists",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"422": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/savings/accounts/{accountNumber}": {
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
					"Savings"
				],
				"summary": "Find a savings account by its number",
				"parameters": [
					{
						"description": "Luhn-valid account number",
						"name": "accountNumber",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SavingsResponseDTO"
						}
					},
					"404": {
						"description": "Savings account not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"422": {
						"description": "Invalid account number",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/savings/{savingsID}/deposits": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Records the deposit and credits the balance in one transaction",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Savings"
				],
				"summary": "Deposit into a savings account",
				"parameters": [
					{
						"description": "Savings ID",
						"name": "savingsID",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"description": "Deposit payload",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.DepositRequestDTO"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.DepositResponseDTO"
						}
					},
					"400": {
						"description": "Invalid request body",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Not the owner",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Savings account not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"422": {
						"description": "Invalid amount or method",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
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
					"Savings"
				],
				"summary": "Deposit history, newest first",
				"parameters": [
					{
						"description": "Savings ID",
						"name": "savingsID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.DepositResponseDTO"
							}
						}
					},
					"204": {
						"description": "No deposits",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Not the owner",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/savings/{savingsID}/product": {
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Admin"
				],
				"summary": "Attach a savings product to an account",
				"parameters": [
					{
						"description": "Savings ID",
						"name": "savingsID",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"description": "Product reference",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.AssignProductRequestDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SavingsResponseDTO"
						}
					},
					"404": {
						"description": "Account or product not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/savings/{savingsID}/withdrawals": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Files a PENDING withdrawal; members need enough balance, admins may file any amount",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Savings"
				],
				"summary": "Request a withdrawal",
				"parameters": [
					{
						"description": "Savings ID",
						"name": "savingsID",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"description": "Withdrawal payload",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.WithdrawalRequestDTO"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.WithdrawalResponseDTO"
						}
					},
					"402": {
						"description": "Insufficient balance",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Not the owner",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"422": {
						"description": "Invalid amount or method",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
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
					"Savings"
				],
				"summary": "Withdrawal history, newest first",
				"parameters": [
					{
						"description": "Savings ID",
						"name": "savingsID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.WithdrawalResponseDTO"
							}
						}
					},
					"204": {
						"description": "No withdrawals",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"403": {
						"description": "Not the owner",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/user/login": {
			"post": {
				"description": "Log in and get a JWT carrying the user id and role",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "Authenticate user",
				"parameters": [
					{
						"description": "Login request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoginRequestDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.LoginResponseDTO"
						}
					},
					"400": {
						"description": "Invalid request body",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"401": {
						"description": "Invalid credentials",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/user/me": {
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
					"Members"
				],
				"summary": "Current user profile",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.UserResponseDTO"
						}
					},
					"401": {
						"description": "User not authorized",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/user/register": {
			"post": {
				"description": "Create a member account with an empty savings account and return a JWT in the Authorization header",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "Register a new member",
				"parameters": [
					{
						"description": "Register request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RegisterRequestDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.RegisterResponseDTO"
						}
					},
					"400": {
						"description": "Invalid request body",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"409": {
						"description": "User already exists",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"422": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/users/{userID}/budget-categories": {
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
					"Budget"
				],
				"summary": "A member's budget categories",
				"parameters": [
					{
						"description": "User ID",
						"name": "userID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.CategoryResponseDTO"
							}
						}
					},
					"403": {
						"description": "Not the owner",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Name defaults to the type when empty",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Budget"
				],
				"summary": "Add a budget category",
				"parameters": [
					{
						"description": "User ID",
						"name": "userID",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"description": "Category",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CategoryRequestDTO"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.CategoryResponseDTO"
						}
					},
					"403": {
						"description": "Not the owner",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"422": {
						"description": "Unsupported type or invalid amount",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/users/{userID}/loans": {
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
					"Loans"
				],
				"summary": "A member's loans, newest first",
				"parameters": [
					{
						"description": "User ID",
						"name": "userID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.LoanResponseDTO"
							}
						}
					},
					"204": {
						"description": "No loans",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/users/{userID}/recommendations": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Evaluates savings, outstanding loans and budget categories and stores one recommendation per rule that fires",
				"produces": [
					"application/json"
				],
				"tags": [
					"Budget"
				],
				"summary": "Generate budget recommendations",
				"parameters": [
					{
						"description": "User ID",
						"name": "userID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.RecommendationResponseDTO"
							}
						}
					},
					"403": {
						"description": "Not the owner",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
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
					"Budget"
				],
				"summary": "Stored recommendations, newest first",
				"parameters": [
					{
						"description": "User ID",
						"name": "userID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.RecommendationResponseDTO"
							}
						}
					}
				}
			}
		},
		"/api/users/{userID}/savings": {
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
					"Savings"
				],
				"summary": "Get a member's savings account",
				"parameters": [
					{
						"description": "User ID",
						"name": "userID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SavingsResponseDTO"
						}
					},
					"403": {
						"description": "Not the owner",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Savings account not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/withdrawals/{withdrawalID}/approve": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Debits the savings balance; fails with 402 when the balance no longer covers the amount",
				"produces": [
					"application/json"
				],
				"tags": [
					"Admin"
				],
				"summary": "Approve a pending withdrawal",
				"parameters": [
					{
						"description": "Withdrawal ID",
						"name": "withdrawalID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.WithdrawalResponseDTO"
						}
					},
					"402": {
						"description": "Insufficient balance",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"404": {
						"description": "Withdrawal not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"409": {
						"description": "Already processed",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		},
		"/api/withdrawals/{withdrawalID}/reject": {
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
					"Admin"
				],
				"summary": "Reject a pending withdrawal",
				"parameters": [
					{
						"description": "Withdrawal ID",
						"name": "withdrawalID",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.WithdrawalResponseDTO"
						}
					},
					"404": {
						"description": "Withdrawal not found",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					},
					"409": {
						"description": "Already processed",
						"schema": {
							"$ref": "#/definitions/utils.Response"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.AssignProductRequestDTO": {
			"type": "object",
			"required": [
				"product_id"
			],
			"properties": {
				"product_id": {
					"type": "integer",
					"example": 1
				}
			}
		},
		"dto.BatchResultDTO": {
			"type": "object",
			"properties": {
				"failed_user_ids": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				},
				"members": {
					"type": "integer",
					"example": 120
				},
				"recommendations": {
					"type": "integer",
					"example": 210
				}
			}
		},
		"dto.CategoryRequestDTO": {
			"type": "object",
			"required": [
				"amount",
				"type"
			],
			"properties": {
				"amount": {
					"type": "string",
					"example": "800.00"
				},
				"name": {
					"type": "string",
					"example": "Rent"
				},
				"type": {
					"type": "string",
					"example": "HOUSING"
				}
			}
		},
		"dto.CategoryResponseDTO": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "string",
					"example": "800.00"
				},
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "integer",
					"example": 1
				},
				"name": {
					"type": "string",
					"example": "Rent"
				},
				"type": {
					"type": "string",
					"example": "HOUSING"
				},
				"user_id": {
					"type": "integer",
					"example": 7
				}
			}
		},
		"dto.ChangeRoleRequestDTO": {
			"type": "object",
			"required": [
				"role"
			],
			"properties": {
				"role": {
					"type": "string",
					"example": "ADMIN"
				}
			}
		},
		"dto.DepositRequestDTO": {
			"type": "object",
			"required": [
				"amount",
				"method"
			],
			"properties": {
				"amount": {
					"type": "string",
					"example": "250.00"
				},
				"method": {
					"type": "string",
					"example": "CASH"
				},
				"notes": {
					"type": "string",
					"example": "March salary"
				}
			}
		},
		"dto.DepositResponseDTO": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "string",
					"example": "250.00"
				},
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "integer",
					"example": 11
				},
				"method": {
					"type": "string",
					"example": "CASH"
				},
				"notes": {
					"type": "string"
				},
				"reference": {
					"type": "string",
					"example": "3f0e5b7c-3c1b-4a8e-9d43-0b9f7d0c2a11"
				},
				"savings_id": {
					"type": "integer",
					"example": 3
				}
			}
		},
		"dto.LoanApplicationRequestDTO": {
			"type": "object",
			"required": [
				"amount",
				"purpose",
				"term_months"
			],
			"properties": {
				"amount": {
					"type": "string",
					"example": "10000.00"
				},
				"description": {
					"type": "string"
				},
				"product_id": {
					"type": "integer",
					"example": 4
				},
				"purpose": {
					"type": "string",
					"example": "School fees"
				},
				"term_months": {
					"type": "integer",
					"example": 12
				},
				"user_id": {
					"type": "integer",
					"example": 7
				}
			}
		},
		"dto.LoanProductRequestDTO": {
			"type": "object",
			"required": [
				"interest_rate",
				"max_amount",
				"max_term",
				"name"
			],
			"properties": {
				"description": {
					"type": "string"
				},
				"interest_rate": {
					"type": "string",
					"example": "12.50"
				},
				"max_amount": {
					"type": "string",
					"example": "50000.00"
				},
				"max_term": {
					"type": "integer",
					"example": 24
				},
				"min_savings_percentage": {
					"type": "string",
					"example": "25"
				},
				"name": {
					"type": "string",
					"example": "Development"
				}
			}
		},
		"dto.LoanProductResponseDTO": {
			"type": "object",
			"properties": {
				"created_at": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"id": {
					"type": "integer",
					"example": 4
				},
				"interest_rate": {
					"type": "string",
					"example": "12.50"
				},
				"max_amount": {
					"type": "string",
					"example": "50000.00"
				},
				"max_term": {
					"type": "integer",
					"example": 24
				},
				"min_savings_percentage": {
					"type": "string",
					"example": "25.00"
				},
				"name": {
					"type": "string",
					"example": "Development"
				}
			}
		},
		"dto.LoanResponseDTO": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "string",
					"example": "10000.00"
				},
				"created_at": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"id": {
					"type": "integer",
					"example": 99
				},
				"interest_rate": {
					"type": "string",
					"example": "12.50"
				},
				"processed_at": {
					"type": "string"
				},
				"product_id": {
					"type": "integer",
					"example": 4
				},
				"purpose": {
					"type": "string",
					"example": "School fees"
				},
				"status": {
					"type": "string",
					"example": "PENDING"
				},
				"term_months": {
					"type": "integer",
					"example": 12
				},
				"user_id": {
					"type": "integer",
					"example": 7
				}
			}
		},
		"dto.LoginRequestDTO": {
			"type": "object",
			"required": [
				"login",
				"password"
			],
			"properties": {
				"login": {
					"type": "string",
					"example": "jdoe"
				},
				"password": {
					"type": "string",
					"example": "s3cret-pass"
				}
			}
		},
		"dto.LoginResponseDTO": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"dto.RecommendationResponseDTO": {
			"type": "object",
			"properties": {
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "integer",
					"example": 5
				},
				"kind": {
					"type": "string",
					"example": "EMERGENCY_FUND"
				},
				"message": {
					"type": "string"
				},
				"user_id": {
					"type": "integer",
					"example": 7
				}
			}
		},
		"dto.RegisterRequestDTO": {
			"type": "object",
			"required": [
				"login",
				"password"
			],
			"properties": {
				"email": {
					"type": "string",
					"example": "jdoe@example.com"
				},
				"full_name": {
					"type": "string",
					"example": "John Doe"
				},
				"login": {
					"type": "string",
					"example": "jdoe"
				},
				"password": {
					"type": "string",
					"example": "s3cret-pass"
				}
			}
		},
		"dto.RegisterResponseDTO": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"dto.RepaymentRequestDTO": {
			"type": "object",
			"required": [
				"amount",
				"method"
			],
			"properties": {
				"amount": {
					"type": "string",
					"example": "300.00"
				},
				"method": {
					"type": "string",
					"example": "BANK_TRANSFER"
				},
				"notes": {
					"type": "string"
				}
			}
		},
		"dto.RepaymentResponseDTO": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "string",
					"example": "300.00"
				},
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "integer",
					"example": 5
				},
				"loan_id": {
					"type": "integer",
					"example": 99
				},
				"method": {
					"type": "string",
					"example": "BANK_TRANSFER"
				},
				"notes": {
					"type": "string"
				},
				"reference": {
					"type": "string"
				}
			}
		},
		"dto.SavingsProductRequestDTO": {
			"type": "object",
			"required": [
				"interest_rate",
				"name"
			],
			"properties": {
				"description": {
					"type": "string"
				},
				"interest_rate": {
					"type": "string",
					"example": "5.50"
				},
				"minimum_balance": {
					"type": "string",
					"example": "100.00"
				},
				"name": {
					"type": "string",
					"example": "Fixed deposit"
				},
				"term_months": {
					"type": "integer",
					"example": 12
				}
			}
		},
		"dto.SavingsProductResponseDTO": {
			"type": "object",
			"properties": {
				"created_at": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"id": {
					"type": "integer",
					"example": 1
				},
				"interest_rate": {
					"type": "string",
					"example": "5.50"
				},
				"minimum_balance": {
					"type": "string",
					"example": "100.00"
				},
				"name": {
					"type": "string",
					"example": "Fixed deposit"
				},
				"term_months": {
					"type": "integer",
					"example": 12
				}
			}
		},
		"dto.SavingsResponseDTO": {
			"type": "object",
			"properties": {
				"account_number": {
					"type": "string",
					"example": "71000000075"
				},
				"balance": {
					"type": "string",
					"example": "1000.00"
				},
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "integer",
					"example": 3
				},
				"product_id": {
					"type": "integer",
					"example": 1
				},
				"updated_at": {
					"type": "string"
				},
				"user_id": {
					"type": "integer",
					"example": 7
				}
			}
		},
		"dto.SummaryResponseDTO": {
			"type": "object",
			"properties": {
				"members": {
					"type": "integer",
					"example": 120
				},
				"outstanding_loans": {
					"type": "string",
					"example": "42000.00"
				},
				"pending_loans": {
					"type": "integer",
					"example": 2
				},
				"pending_withdrawals": {
					"type": "integer",
					"example": 3
				},
				"total_savings": {
					"type": "string",
					"example": "153000.50"
				}
			}
		},
		"dto.UserResponseDTO": {
			"type": "object",
			"properties": {
				"created_at": {
					"type": "string",
					"example": "2024-01-02T15:04:05Z"
				},
				"email": {
					"type": "string",
					"example": "jdoe@example.com"
				},
				"full_name": {
					"type": "string",
					"example": "John Doe"
				},
				"id": {
					"type": "integer",
					"example": 7
				},
				"login": {
					"type": "string",
					"example": "jdoe"
				},
				"role": {
					"type": "string",
					"example": "MEMBER"
				}
			}
		},
		"dto.WithdrawalRequestDTO": {
			"type": "object",
			"required": [
				"amount",
				"method"
			],
			"properties": {
				"amount": {
					"type": "string",
					"example": "400.00"
				},
				"method": {
					"type": "string",
					"example": "MOBILE_MONEY"
				},
				"reason": {
					"type": "string",
					"example": "School fees"
				}
			}
		},
		"dto.WithdrawalResponseDTO": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "string",
					"example": "400.00"
				},
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "integer",
					"example": 21
				},
				"method": {
					"type": "string",
					"example": "MOBILE_MONEY"
				},
				"processed_at": {
					"type": "string"
				},
				"reason": {
					"type": "string"
				},
				"reference": {
					"type": "string"
				},
				"savings_id": {
					"type": "integer",
					"example": 3
				},
				"status": {
					"type": "string",
					"example": "PENDING"
				}
			}
		},
		"utils.Response": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string",
					"example": "Internal server error"
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
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SACCO API",
	Description:      "Savings and credit cooperative: members, savings, loans and budgeting",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
