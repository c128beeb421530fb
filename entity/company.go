/*
 * Copyright 2025 WITS contributors.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package entity

import (
	"github.com/knatz-personal/wits/database"

	"github.com/uptrace/bun"
)

// Company holds the registered business details shown on invoices.
type Company struct {
	bun.BaseModel `bun:"table:companies,alias:co"`
	BaseEntity

	RegistrationNumber string  `bun:"registration_number,notnull" json:"registrationNumber"`
	CompanyName        string  `bun:"company_name,notnull" json:"companyName"`
	AddressLine1       string  `bun:"address_line1,notnull" json:"addressLine1"`
	AddressLine2       string  `bun:"address_line2,notnull" json:"addressLine2"`
	AddressLine3       string  `bun:"address_line3" json:"addressLine3,omitempty"`
	AddressLine4       string  `bun:"address_line4" json:"addressLine4,omitempty"`
	TelephoneNos       string  `bun:"telephone_nos,notnull" json:"telephoneNos"`
	EmailAddress       string  `bun:"email_address,notnull" json:"emailAddress"`
	WebSite            string  `bun:"web_site" json:"webSite,omitempty"`
	VatNo              string  `bun:"vat_no,notnull" json:"vatNo"`
	VatCode            string  `bun:"vat_code,notnull" json:"vatCode"`
	VatRate            float64 `bun:"vat_rate" json:"vatRate"`
	LogoPath           string  `bun:"logo_path" json:"logoPath,omitempty"`
}

func init() {
	database.RegisterEntity((*Company)(nil), 20)
}
