package v1

import "github.com/dimassfeb-09/sima-app-web/internal/models"

func ModelToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		UID:         user.UID,
		FullName:    user.FullName,
		Email:       user.Email,
		Phone:       user.Phone,
		AccountType: string(user.AccountType),
		CreatedAt:   user.CreatedAt,
	}
}

func ModelToOrganizationResponse(org *models.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		Latitude:     org.Latitude,
		Longitude:    org.Longitude,
		UserID:       org.UserID,
		InstanceType: org.InstanceType,
	}
}

func ModelsToOrganizationResponses(orgs []*models.Organization) []OrganizationResponse {
	responses := make([]OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		responses = append(responses, ModelToOrganizationResponse(org))
	}
	return responses
}

func ModelToReportResponse(report *models.Report) ReportResponse {
	return ReportResponse{
		ID:          report.ID,
		Title:       report.Title,
		Description: report.Description,
		Status:      string(report.Status),
		Latitude:    report.Latitude,
		Longitude:   report.Longitude,
		Address:     report.Address,
		ImageURL:    report.ImageURL,
		Type:        report.Type,
		UserID:      report.UserID,
	}
}

func ModelToAssignmentResponse(a *models.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:           a.ID,
		AssignedAt:   a.AssignedAt,
		Status:       string(a.Status),
		StatusColor:  a.Status.Color(),
		DistanceKm:   a.DistanceKm,
		Report:       ModelToReportResponse(&a.Report),
		Organization: ModelToOrganizationResponse(&a.Organization),
	}
}

func ModelsToAssignmentResponses(assignments []*models.Assignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, ModelToAssignmentResponse(a))
	}
	return responses
}

func ModelToAssignmentDetailResponse(d *models.AssignmentDetail) AssignmentDetailResponse {
	return AssignmentDetailResponse{
		AssignmentResponse: ModelToAssignmentResponse(&d.Assignment),
		Reporter: ReporterResponse{
			ID:       d.Reporter.ID,
			FullName: d.Reporter.FullName,
			Email:    d.Reporter.Email,
			Phone:    d.Reporter.Phone,
		},
	}
}
