package client

import "github.com/dmitrijs2005/profiledash/internal/client/models"

// userDataQuery is the only query the dashboard sends.
const userDataQuery = `
query getUserData($userId: Int!) {
    user: user_by_pk(id: $userId) {
        id
        login
        firstName
        lastName
        email
        auditRatio
        totalUp
        totalDown
        transactions {
            id
            type
            amount
            createdAt
            path
            objectId
        }
        results(
            where: { grade: { _is_null: false } }
            order_by: { createdAt: asc }
        ) {
            id
            grade
            createdAt
            path
        }
    }
}
`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type userDataResponse struct {
	Data *struct {
		User *models.UserProfile `json:"user"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}
